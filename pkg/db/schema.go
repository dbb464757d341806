package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- One row per completed scan.
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    lang TEXT NOT NULL,
    dump_path TEXT NOT NULL,
    output_tsv TEXT,
    started_at TIMESTAMP NOT NULL,
    finished_at TIMESTAMP NOT NULL,

    pages INTEGER NOT NULL,
    evaluated INTEGER NOT NULL,
    probable INTEGER NOT NULL,
    confirmed INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_lang ON runs(lang);

-- Per-family tallies for each run.
CREATE TABLE IF NOT EXISTS run_families (
    run_id INTEGER NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
    family TEXT NOT NULL,
    transclusion INTEGER NOT NULL,
    tracking INTEGER NOT NULL,
    PRIMARY KEY (run_id, family)
);
`
