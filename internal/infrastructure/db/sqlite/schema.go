package sqlite

// schema is applied on every Open; CREATE IF NOT EXISTS keeps it idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id                INTEGER PRIMARY KEY AUTOINCREMENT,
	username          TEXT    NOT NULL UNIQUE,
	password          TEXT    NOT NULL,
	email             TEXT    NOT NULL DEFAULT '',
	first_name        TEXT    NOT NULL DEFAULT '',
	last_name         TEXT    NOT NULL DEFAULT '',
	profile_image_url TEXT    NOT NULL DEFAULT '',
	is_admin          INTEGER NOT NULL DEFAULT 0,
	created_at        TIMESTAMP NOT NULL,
	updated_at        TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS categories (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT    NOT NULL,
	description TEXT    NOT NULL DEFAULT '',
	image_url   TEXT    NOT NULL DEFAULT '',
	active      INTEGER NOT NULL DEFAULT 1,
	created_at  TIMESTAMP NOT NULL,
	updated_at  TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS courses (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	title            TEXT    NOT NULL,
	description      TEXT    NOT NULL DEFAULT '',
	image            TEXT    NOT NULL DEFAULT '',
	duration         TEXT    NOT NULL DEFAULT '',
	price            TEXT    NOT NULL DEFAULT '',
	featured         INTEGER NOT NULL DEFAULT 0,
	category_id      TEXT    NOT NULL DEFAULT '',
	instructor_name  TEXT    NOT NULL DEFAULT '',
	instructor_title TEXT    NOT NULL DEFAULT '',
	instructor_image TEXT    NOT NULL DEFAULT '',
	rating           TEXT    NOT NULL DEFAULT '',
	review_count     INTEGER NOT NULL DEFAULT 0,
	active           INTEGER NOT NULL DEFAULT 1,
	created_at       TIMESTAMP NOT NULL,
	updated_at       TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_courses_category ON courses (category_id);

CREATE TABLE IF NOT EXISTS testimonials (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT    NOT NULL,
	role       TEXT    NOT NULL DEFAULT '',
	content    TEXT    NOT NULL,
	rating     INTEGER NOT NULL DEFAULT 5,
	image_url  TEXT    NOT NULL DEFAULT '',
	visible    INTEGER NOT NULL DEFAULT 1,
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS team_members (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT    NOT NULL,
	role       TEXT    NOT NULL,
	bio        TEXT    NOT NULL DEFAULT '',
	image_url  TEXT    NOT NULL DEFAULT '',
	visible    INTEGER NOT NULL DEFAULT 1,
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS jobs (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	title        TEXT    NOT NULL,
	description  TEXT    NOT NULL,
	requirements TEXT    NOT NULL,
	location     TEXT    NOT NULL DEFAULT '',
	type         TEXT    NOT NULL DEFAULT '',
	active       INTEGER NOT NULL DEFAULT 1,
	created_at   TIMESTAMP NOT NULL,
	updated_at   TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS student_applications (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	course_id  TEXT    NOT NULL DEFAULT '',
	name       TEXT    NOT NULL,
	email      TEXT    NOT NULL,
	phone      TEXT    NOT NULL DEFAULT '',
	message    TEXT    NOT NULL DEFAULT '',
	status     TEXT    NOT NULL DEFAULT 'pending',
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_student_applications_course ON student_applications (course_id);
CREATE INDEX IF NOT EXISTS idx_student_applications_status ON student_applications (status);

CREATE TABLE IF NOT EXISTS career_applications (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	job_id       TEXT    NOT NULL DEFAULT '',
	name         TEXT    NOT NULL,
	email        TEXT    NOT NULL,
	phone        TEXT    NOT NULL DEFAULT '',
	cover_letter TEXT    NOT NULL DEFAULT '',
	resume_url   TEXT    NOT NULL DEFAULT '',
	status       TEXT    NOT NULL DEFAULT 'pending',
	created_at   TIMESTAMP NOT NULL,
	updated_at   TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_career_applications_job ON career_applications (job_id);
CREATE INDEX IF NOT EXISTS idx_career_applications_status ON career_applications (status);

CREATE TABLE IF NOT EXISTS contact_messages (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT    NOT NULL,
	email      TEXT    NOT NULL,
	subject    TEXT    NOT NULL DEFAULT '',
	message    TEXT    NOT NULL,
	is_read    INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL
);
`
