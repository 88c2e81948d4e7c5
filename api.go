package jsontree

// Valid reports whether data is a well-formed, object-rooted JSON
// document.
func Valid(data []byte) bool {
	_, err := Parse(data)
	return err == nil
}
