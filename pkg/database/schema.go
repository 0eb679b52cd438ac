package database

import (
	"context"
	"fmt"
)

// CreateSchema creates the database schema for the staff registry.
// All statements are idempotent so startup can run them unconditionally.
//
// No cross-table foreign keys are declared: referential integrity between
// personnel records and roles/contracts/specialties is enforced by the
// application-level validator. The identity_index unique constraint is the
// one storage-level guarantee, making duplicate emails/phones across the
// four personnel collections impossible at commit time.
func (db *DB) CreateSchema(ctx context.Context) error {
	db.logger.Info("Creating database schema...")

	tables := []string{
		createRolesTable,
		createContractsTable,
		createAreasTable,
		createSpecialtiesTable,
		createAdminsTable,
		createDoctorsTable,
		createNursesTable,
		createPatientsTable,
		createIdentityIndexTable,
	}

	for _, table := range tables {
		if _, err := db.ExecContext(ctx, table); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	indexes := []string{
		createIdentityIndexIndexes,
		createSpecialtiesIndexes,
	}

	for _, index := range indexes {
		if _, err := db.ExecContext(ctx, index); err != nil {
			return fmt.Errorf("failed to create indexes: %w", err)
		}
	}

	db.logger.Info("Database schema created successfully")
	return nil
}

const createRolesTable = `
CREATE TABLE IF NOT EXISTS roles (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL UNIQUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`

const createContractsTable = `
CREATE TABLE IF NOT EXISTS contracts (
	id              TEXT PRIMARY KEY,
	contract_type   TEXT NOT NULL,
	contract_period TEXT NOT NULL,
	active          BOOLEAN NOT NULL DEFAULT TRUE,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);`

const createAreasTable = `
CREATE TABLE IF NOT EXISTS areas (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL UNIQUE,
	active     BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`

const createSpecialtiesTable = `
CREATE TABLE IF NOT EXISTS specialties (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL UNIQUE,
	area_id    TEXT NOT NULL,
	active     BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`

const createAdminsTable = `
CREATE TABLE IF NOT EXISTS admins (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	role_id       TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`

const createDoctorsTable = `
CREATE TABLE IF NOT EXISTS doctors (
	id            TEXT PRIMARY KEY,
	first_name    TEXT NOT NULL,
	last_name     TEXT NOT NULL,
	age           INTEGER NOT NULL,
	gender        TEXT NOT NULL,
	specialty_ids TEXT[] NOT NULL DEFAULT '{}',
	municipality  TEXT NOT NULL,
	department    TEXT NOT NULL,
	phone         TEXT NOT NULL,
	email         TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	contract_id   TEXT NOT NULL,
	role_id       TEXT NOT NULL,
	active        BOOLEAN NOT NULL DEFAULT TRUE,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`

const createNursesTable = `
CREATE TABLE IF NOT EXISTS nurses (
	id            TEXT PRIMARY KEY,
	first_name    TEXT NOT NULL,
	last_name     TEXT NOT NULL,
	age           INTEGER NOT NULL,
	gender        TEXT NOT NULL,
	specialty_ids TEXT[] NOT NULL DEFAULT '{}',
	municipality  TEXT NOT NULL,
	department    TEXT NOT NULL,
	phone         TEXT NOT NULL,
	email         TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	contract_id   TEXT NOT NULL,
	role_id       TEXT NOT NULL,
	active        BOOLEAN NOT NULL DEFAULT TRUE,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`

const createPatientsTable = `
CREATE TABLE IF NOT EXISTS patients (
	id           TEXT PRIMARY KEY,
	first_name   TEXT NOT NULL,
	last_name    TEXT NOT NULL,
	age          INTEGER NOT NULL,
	gender       TEXT NOT NULL,
	allergies    JSONB NOT NULL DEFAULT '[]',
	municipality TEXT NOT NULL,
	department   TEXT NOT NULL,
	phone        TEXT NOT NULL,
	email        TEXT NOT NULL,
	active       BOOLEAN NOT NULL DEFAULT TRUE,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`

const createIdentityIndexTable = `
CREATE TABLE IF NOT EXISTS identity_index (
	field     TEXT NOT NULL,
	value     TEXT NOT NULL,
	kind      TEXT NOT NULL,
	record_id TEXT NOT NULL,
	PRIMARY KEY (field, value)
);`

const createIdentityIndexIndexes = `
CREATE INDEX IF NOT EXISTS idx_identity_index_record ON identity_index (kind, record_id);`

const createSpecialtiesIndexes = `
CREATE INDEX IF NOT EXISTS idx_specialties_area ON specialties (area_id);`
