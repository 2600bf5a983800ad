package sqlite

import "github.com/ministore/fieldstore/storage"

var SQLTemplates = storage.SQL{
	GetMeta:       "SELECT value FROM meta WHERE key = ?1",
	SetMeta:       "INSERT INTO meta(key,value) VALUES(?1,?2) ON CONFLICT(key) DO UPDATE SET value=excluded.value",
	NextDocID:     "SELECT COALESCE(MAX(doc_id) + 1, 0) FROM docs",
	InsertDoc:     "INSERT INTO docs(doc_id, stored_json) VALUES(?1, ?2)",
	GetDoc:        "SELECT stored_json FROM docs WHERE doc_id = ?1",
	CountDocs:     "SELECT COUNT(*) FROM docs",
	SelectDocsIn:  "SELECT doc_id, stored_json FROM docs WHERE doc_id IN ",
	AllDocIDs:     "SELECT doc_id FROM docs ORDER BY doc_id",
	InsertPosting: "INSERT INTO postings(term, doc_id, term_freq, positions) VALUES(?1, ?2, ?3, ?4)",
	GetPostings:   "SELECT doc_id, term_freq, positions FROM postings WHERE term = ?1 ORDER BY doc_id",
	DocFreq:       "SELECT COUNT(*) FROM postings WHERE term = ?1",
	TermRange:     "SELECT term, COUNT(*) FROM postings WHERE term >= ?1 AND term < ?2 GROUP BY term ORDER BY term",
	RangeDocIDs:   "SELECT DISTINCT doc_id FROM postings WHERE term >= ?1 AND term < ?2 ORDER BY doc_id",
	InsertFast:    "INSERT OR IGNORE INTO fast_u32(field, doc_id, value) VALUES(?1, ?2, ?3)",
	GetFast:       "SELECT value FROM fast_u32 WHERE field = ?1 AND doc_id = ?2",
}
