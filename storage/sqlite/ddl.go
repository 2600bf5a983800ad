package sqlite

const ddlBase = `
CREATE TABLE IF NOT EXISTS meta (
  key   TEXT PRIMARY KEY,
  value TEXT
);

CREATE TABLE IF NOT EXISTS docs (
  doc_id      INTEGER PRIMARY KEY,
  stored_json TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS postings (
  term      BLOB    NOT NULL,
  doc_id    INTEGER NOT NULL REFERENCES docs(doc_id) ON DELETE CASCADE,
  term_freq INTEGER NOT NULL,
  positions BLOB,
  PRIMARY KEY (term, doc_id)
) WITHOUT ROWID;
CREATE INDEX IF NOT EXISTS idx_postings_doc ON postings(doc_id);

CREATE TABLE IF NOT EXISTS fast_u32 (
  field  INTEGER NOT NULL,
  doc_id INTEGER NOT NULL REFERENCES docs(doc_id) ON DELETE CASCADE,
  value  INTEGER NOT NULL,
  PRIMARY KEY (field, doc_id)
) WITHOUT ROWID;
`
