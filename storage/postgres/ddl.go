package postgres

const ddlBase = `
CREATE TABLE IF NOT EXISTS meta (
  key   TEXT PRIMARY KEY,
  value TEXT
);

CREATE TABLE IF NOT EXISTS docs (
  doc_id      BIGINT PRIMARY KEY,
  stored_json JSONB NOT NULL
);

CREATE TABLE IF NOT EXISTS postings (
  term      BYTEA   NOT NULL,
  doc_id    BIGINT  NOT NULL REFERENCES docs(doc_id) ON DELETE CASCADE,
  term_freq INTEGER NOT NULL,
  positions BYTEA,
  PRIMARY KEY (term, doc_id)
);
CREATE INDEX IF NOT EXISTS idx_postings_doc ON postings(doc_id);

CREATE TABLE IF NOT EXISTS fast_u32 (
  field  INTEGER NOT NULL,
  doc_id BIGINT  NOT NULL REFERENCES docs(doc_id) ON DELETE CASCADE,
  value  BIGINT  NOT NULL,
  PRIMARY KEY (field, doc_id)
);
`
