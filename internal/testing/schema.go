package testing

// RecruitmentSchema is the minimal schema recruitsync reads and writes.
// Production databases own their schema; this copy exists for integration tests.
const RecruitmentSchema = `
CREATE TABLE candidates (
	candidate_id SERIAL PRIMARY KEY,
	first_name   TEXT NOT NULL,
	last_name    TEXT NOT NULL,
	email        TEXT NOT NULL UNIQUE,
	phone        TEXT,
	skills       TEXT
);

CREATE TABLE jobs (
	job_id SERIAL PRIMARY KEY,
	title  TEXT NOT NULL
);

CREATE TABLE applications (
	application_id SERIAL PRIMARY KEY,
	job_id         INTEGER NOT NULL REFERENCES jobs (job_id),
	candidate_id   INTEGER REFERENCES candidates (candidate_id)
);
`
