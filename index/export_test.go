package index

// SetDocsChunkSize changes the Docs chunk size and returns a restore func.
func SetDocsChunkSize(n int) func() {
	old := docsChunkSize
	docsChunkSize = n
	return func() { docsChunkSize = old }
}
