/*
Package jsontree parses, builds and serializes JSON documents.

In contrast to encoding/json the package is centered around a document
tree: a buffer is parsed into typed nodes that can be queried and edited,
and a tree built either way is printed back as canonical indented JSON.
Documents are object-rooted and held fully in memory, which keeps the
engine suited to configuration-sized inputs.

Trees are not safe for concurrent mutation; a tree belongs to whoever
holds its root. Malformed input and misused accessors are reported
through typed errors, see SyntaxError, TypeError and BoundsError.
*/
package jsontree // import "github.com/d1ced/jsontree"
