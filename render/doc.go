// Package render draws a graph together with one highlighted route.
//
// Two formats are provided, both writing to an io.Writer:
//
//   - DOT:  Graphviz source ("dot -Tpng") built with github.com/emicklei/dot,
//     weight labels on every edge, route edges red and thick, route
//     vertices orange, the rest light blue.
//   - Text: a terminal-friendly edge listing with route edges starred.
//
// A Scene is plain data (vertex count, edge list, route, title), so the
// renderer never touches the engine; NewScene fills one from a
// core.Adjacency. Labels default to the 0-based vertex index; the CLI passes
// WithOneBased so output matches what the user typed.
//
// Parallel edges are all drawn; for each route hop only the lightest of
// them is highlighted.
package render
