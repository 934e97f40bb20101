package render

import "bytes"

// CountPDFPages counts pages in a rendered PDF by scanning for page
// objects. It is a diagnostic for logs and tests, not a full PDF parser:
// the backend writes uncompressed object dictionaries for page nodes, so
// counting /Type /Page entries (excluding the /Pages tree root) is
// sufficient for the documents we produce.
func CountPDFPages(pdf []byte) int {
	count := 0
	rest := pdf
	for {
		idx := bytes.Index(rest, []byte("/Type /Page"))
		if idx < 0 {
			break
		}
		after := rest[idx+len("/Type /Page"):]
		// "/Type /Pages" is the page-tree root, not a page.
		if !bytes.HasPrefix(after, []byte("s")) {
			count++
		}
		rest = after
	}
	if count == 0 && len(pdf) > 0 {
		// Compressed documents hide page objects; report at least one
		// page for non-empty output.
		return 1
	}
	return count
}
