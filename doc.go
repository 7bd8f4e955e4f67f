/*
Package jsondoc parses JSON-like text into an ordered, mutable document tree
and renders the tree back to text.

A document is a top-level object: an ordered sequence of labelled entries
whose values are strings, non-negative integers, floats, booleans, null,
lists, or nested documents. Labels need not be unique; lookups return the
first matching entry.

Parsing, inspecting and rendering:

	doc, err := jsondoc.ParseString(`{"name":"jsondoc","tags":["a","b"]}`)
	if err != nil {
		// err is a *jsondoc.LexError or *jsondoc.ParseError
	}

	name, _ := doc.GetString("name")
	doc.Set("tags", document.List{document.String("c")})
	doc.Add(document.Entry{Label: "version", Value: document.Float(1.5)})

	fmt.Println(jsondoc.Render(doc))
	// {"name":"jsondoc","tags":["c"],"version":1.5}

The grammar is deliberately small: numbers have no sign or exponent,
strings decode only the \" and \\ escapes, and comments and trailing commas
are rejected. Rendering never preserves the original layout; Render produces
the compact form, and Format with the Indent option an indented one.

Documents also implement the json.MarshalerTo and json.UnmarshalerFrom
interfaces of github.com/go-json-experiment/json, for exchanging them with
standard JSON.

Errors are of two kinds: syntax errors (LexError, ParseError) match
ErrSyntax, and file system errors from ReadFile and WriteFile (IOError)
match ErrIO.
*/
package jsondoc
