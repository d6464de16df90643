// Package errors provides structured, coded errors for markup.
//
// Building and rendering an element tree never fails; errors come from the
// layers around it: the guarded renderer, the tree document decoder,
// configuration loading, publishing and the CLI. Each error carries:
//   - A code (e.g., "M010") and category
//   - A short message and a longer detail
//   - An optional source location, with surrounding lines
//   - An optional hint on how to fix it
//
// # Usage
//
//	err := errors.New("M020").
//	    WithLocation("page.yaml", 12, 3).
//	    WithSuggestion("attributes must be a mapping of names to strings")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR M020: Invalid tree document
//	//
//	//   page.yaml:12:3
//	//
//	//     11 │ - tag: a
//	//   → 12 │   attributes: [href]
//	//        │   ^
//	//     13 │   content: home
//	//
//	//   Hint: attributes must be a mapping of names to strings
package errors
