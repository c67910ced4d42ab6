package migrations

// CheckKind tells the runner which catalog check gates a change.
type CheckKind int

const (
	CheckTable CheckKind = iota
	CheckColumn
	CheckConstraint
	CheckIndex
)

// Change is one additive schema statement guarded by an existence check.
type Change struct {
	Name       string
	Check      CheckKind
	Table      string
	Column     string
	Constraint string
	Index      string
	SQL        string
}

// Group is an ordered set of changes recorded as one ledger entry.
type Group struct {
	Name    string
	Changes []Change
}

func addColumn(table, column, definition string) Change {
	return Change{
		Name:   "add_" + table + "_" + column,
		Check:  CheckColumn,
		Table:  table,
		Column: column,
		SQL:    "ALTER TABLE " + table + " ADD COLUMN " + column + " " + definition,
	}
}

func createTable(table, sql string) Change {
	return Change{
		Name:  "create_" + table,
		Check: CheckTable,
		Table: table,
		SQL:   sql,
	}
}

func addIndex(table, index, sql string) Change {
	return Change{
		Name:  "add_" + index,
		Check: CheckIndex,
		Table: table,
		Index: index,
		SQL:   sql,
	}
}

func addConstraint(table, constraint, sql string) Change {
	return Change{
		Name:       "add_" + constraint,
		Check:      CheckConstraint,
		Table:      table,
		Constraint: constraint,
		SQL:        sql,
	}
}

// Groups returns every migration group in application order.
func Groups() []Group {
	return []Group{
		eventColumns(),
		calendarColumns(),
		caseColumns(),
		researchTables(),
		milestoneTables(),
		rolesTables(),
		clientPortalTables(),
		rulingsTables(),
		organizationTables(),
	}
}

// GroupByName returns the named group, or false when unknown.
func GroupByName(name string) (Group, bool) {
	for _, g := range Groups() {
		if g.Name == name {
			return g, true
		}
	}
	return Group{}, false
}

func eventColumns() Group {
	return Group{
		Name: "event_columns",
		Changes: []Change{
			addColumn("events", "priority", "INTEGER NOT NULL DEFAULT 0"),
			addColumn("events", "is_all_day", "BOOLEAN NOT NULL DEFAULT FALSE"),
			addColumn("events", "is_recurring", "BOOLEAN NOT NULL DEFAULT FALSE"),
			addColumn("events", "recurrence_pattern", "VARCHAR(50)"),
			addColumn("events", "recurrence_end_date", "TIMESTAMP"),
			addColumn("events", "reminder_sent", "BOOLEAN NOT NULL DEFAULT FALSE"),
			addColumn("events", "reminder_time", "INTEGER NOT NULL DEFAULT 24"),
			addColumn("events", "conflict_status", "VARCHAR(50)"),
			addColumn("events", "updated_at", "TIMESTAMP"),
		},
	}
}

func calendarColumns() Group {
	return Group{
		Name: "calendar_columns",
		Changes: []Change{
			addColumn("events", "is_flexible", "BOOLEAN NOT NULL DEFAULT FALSE"),
			addColumn("events", "buffer_before", "INTEGER NOT NULL DEFAULT 0"),
			addColumn("events", "buffer_after", "INTEGER NOT NULL DEFAULT 0"),
			addColumn("events", "related_event_id", "UUID"),
			addConstraint("events", "fk_events_related_event",
				"ALTER TABLE events ADD CONSTRAINT fk_events_related_event FOREIGN KEY (related_event_id) REFERENCES events(id)"),
			addColumn("events", "court_reference_number", "VARCHAR(100)"),
			addColumn("events", "participants", "TEXT"),
			addColumn("events", "travel_time_minutes", "INTEGER NOT NULL DEFAULT 0"),
			addColumn("events", "notification_preferences", "TEXT"),
			addColumn("events", "synchronization_status", "VARCHAR(50)"),
		},
	}
}

func caseColumns() Group {
	return Group{
		Name: "case_columns",
		Changes: []Change{
			addColumn("cases", "outcome", "TEXT"),
			addColumn("cases", "closing_date", "TIMESTAMP"),
		},
	}
}

func researchTables() Group {
	return Group{
		Name: "research_tables",
		Changes: []Change{
			createTable("legal_research", `CREATE TABLE IF NOT EXISTS legal_research (
				id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
				created_at TIMESTAMP NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
				title VARCHAR(255) NOT NULL,
				query TEXT NOT NULL,
				results TEXT,
				source VARCHAR(100),
				user_id UUID NOT NULL REFERENCES users(id),
				case_id UUID REFERENCES cases(id)
			)`),
		},
	}
}

func milestoneTables() Group {
	return Group{
		Name: "milestone_tables",
		Changes: []Change{
			createTable("case_milestones", `CREATE TABLE IF NOT EXISTS case_milestones (
				id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
				created_at TIMESTAMP NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
				case_id UUID NOT NULL REFERENCES cases(id),
				title VARCHAR(255) NOT NULL,
				description TEXT,
				order_index INTEGER NOT NULL DEFAULT 0,
				status VARCHAR(50) NOT NULL DEFAULT 'pending',
				due_date TIMESTAMP,
				completed_at TIMESTAMP
			)`),
		},
	}
}

func rolesTables() Group {
	return Group{
		Name: "roles_tables",
		Changes: []Change{
			addColumn("users", "role", "VARCHAR(50) NOT NULL DEFAULT 'legal_professional'"),
			addColumn("users", "status", "VARCHAR(50) NOT NULL DEFAULT 'active'"),
			addColumn("users", "phone", "VARCHAR(30)"),
			addColumn("users", "email_verified", "BOOLEAN NOT NULL DEFAULT FALSE"),
			createTable("roles", `CREATE TABLE IF NOT EXISTS roles (
				id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
				created_at TIMESTAMP NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
				name VARCHAR(64) NOT NULL UNIQUE,
				description VARCHAR(255),
				is_default BOOLEAN NOT NULL DEFAULT FALSE
			)`),
			createTable("permissions", `CREATE TABLE IF NOT EXISTS permissions (
				id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
				created_at TIMESTAMP NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
				name VARCHAR(64) NOT NULL UNIQUE,
				description VARCHAR(255)
			)`),
			createTable("role_permissions", `CREATE TABLE IF NOT EXISTS role_permissions (
				role_id UUID NOT NULL REFERENCES roles(id),
				permission_id UUID NOT NULL REFERENCES permissions(id),
				PRIMARY KEY (role_id, permission_id)
			)`),
		},
	}
}

func clientPortalTables() Group {
	return Group{
		Name: "client_portal_tables",
		Changes: []Change{
			createTable("clients", `CREATE TABLE IF NOT EXISTS clients (
				id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
				created_at TIMESTAMP NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
				name VARCHAR(255) NOT NULL,
				email VARCHAR(255),
				phone VARCHAR(30),
				address TEXT,
				client_type VARCHAR(50) NOT NULL DEFAULT 'individual'
			)`),
			createTable("case_clients", `CREATE TABLE IF NOT EXISTS case_clients (
				case_id UUID NOT NULL REFERENCES cases(id),
				client_id UUID NOT NULL REFERENCES clients(id),
				PRIMARY KEY (case_id, client_id)
			)`),
			addColumn("clients", "has_portal_access", "BOOLEAN NOT NULL DEFAULT FALSE"),
			createTable("client_portal_users", `CREATE TABLE IF NOT EXISTS client_portal_users (
				id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
				created_at TIMESTAMP NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
				email VARCHAR(120) NOT NULL,
				password_hash VARCHAR(256) NOT NULL,
				is_active BOOLEAN NOT NULL DEFAULT TRUE,
				last_login TIMESTAMP,
				access_token VARCHAR(100),
				token_expiry TIMESTAMP,
				client_id UUID NOT NULL REFERENCES clients(id) ON DELETE CASCADE
			)`),
			createTable("document_shares", `CREATE TABLE IF NOT EXISTS document_shares (
				document_id UUID NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
				client_portal_user_id UUID NOT NULL,
				PRIMARY KEY (document_id, client_portal_user_id)
			)`),
			addConstraint("document_shares", "fk_document_shares_portal_user",
				"ALTER TABLE document_shares ADD CONSTRAINT fk_document_shares_portal_user FOREIGN KEY (client_portal_user_id) REFERENCES client_portal_users(id) ON DELETE CASCADE"),
			addIndex("client_portal_users", "idx_client_portal_users_email",
				"CREATE INDEX IF NOT EXISTS idx_client_portal_users_email ON client_portal_users (email)"),
			addIndex("client_portal_users", "idx_client_portal_users_client_id",
				"CREATE INDEX IF NOT EXISTS idx_client_portal_users_client_id ON client_portal_users (client_id)"),
		},
	}
}

func rulingsTables() Group {
	return Group{
		Name: "rulings_tables",
		Changes: []Change{
			createTable("judges", `CREATE TABLE IF NOT EXISTS judges (
				id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
				created_at TIMESTAMP NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
				name VARCHAR(255) NOT NULL UNIQUE,
				court VARCHAR(255)
			)`),
			createTable("tags", `CREATE TABLE IF NOT EXISTS tags (
				id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
				created_at TIMESTAMP NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
				name VARCHAR(100) NOT NULL UNIQUE,
				parent_id UUID REFERENCES tags(id)
			)`),
			createTable("rulings", `CREATE TABLE IF NOT EXISTS rulings (
				id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
				created_at TIMESTAMP NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
				case_number VARCHAR(100),
				title VARCHAR(500) NOT NULL,
				court VARCHAR(255),
				date_of_ruling TIMESTAMP,
				citation VARCHAR(255),
				url VARCHAR(500),
				summary TEXT,
				full_text TEXT,
				outcome VARCHAR(100),
				category VARCHAR(100),
				importance_score DOUBLE PRECISION NOT NULL DEFAULT 0,
				is_landmark BOOLEAN NOT NULL DEFAULT FALSE,
				user_id UUID REFERENCES users(id)
			)`),
			createTable("ruling_tags", `CREATE TABLE IF NOT EXISTS ruling_tags (
				ruling_id UUID NOT NULL REFERENCES rulings(id),
				tag_id UUID NOT NULL REFERENCES tags(id),
				PRIMARY KEY (ruling_id, tag_id)
			)`),
			createTable("ruling_judges", `CREATE TABLE IF NOT EXISTS ruling_judges (
				ruling_id UUID NOT NULL REFERENCES rulings(id),
				judge_id UUID NOT NULL REFERENCES judges(id),
				PRIMARY KEY (ruling_id, judge_id)
			)`),
			createTable("ruling_references", `CREATE TABLE IF NOT EXISTS ruling_references (
				id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
				created_at TIMESTAMP NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
				ruling_id UUID NOT NULL REFERENCES rulings(id),
				cited_ruling_id UUID REFERENCES rulings(id),
				citation_text TEXT
			)`),
			createTable("ruling_annotations", `CREATE TABLE IF NOT EXISTS ruling_annotations (
				id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
				created_at TIMESTAMP NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
				ruling_id UUID NOT NULL REFERENCES rulings(id),
				user_id UUID NOT NULL REFERENCES users(id),
				text TEXT NOT NULL
			)`),
			createTable("ruling_analyses", `CREATE TABLE IF NOT EXISTS ruling_analyses (
				id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
				created_at TIMESTAMP NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
				ruling_id UUID NOT NULL REFERENCES rulings(id),
				analysis_type VARCHAR(100) NOT NULL,
				result JSONB
			)`),
			addIndex("rulings", "idx_rulings_court",
				"CREATE INDEX IF NOT EXISTS idx_rulings_court ON rulings (court)"),
			addIndex("rulings", "idx_rulings_category",
				"CREATE INDEX IF NOT EXISTS idx_rulings_category ON rulings (category)"),
		},
	}
}

func organizationTables() Group {
	return Group{
		Name: "organization_tables",
		Changes: []Change{
			createTable("organizations", `CREATE TABLE IF NOT EXISTS organizations (
				id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
				created_at TIMESTAMP NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
				name VARCHAR(255) NOT NULL UNIQUE,
				description TEXT,
				owner_id UUID NOT NULL REFERENCES users(id)
			)`),
			addColumn("users", "organization_id", "UUID"),
			addConstraint("users", "fk_users_organization",
				"ALTER TABLE users ADD CONSTRAINT fk_users_organization FOREIGN KEY (organization_id) REFERENCES organizations(id)"),
		},
	}
}
