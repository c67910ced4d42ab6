package contextkeys

// Custom type avoids collisions with other packages' context keys.
type contextKey string

// DBContextKey is the key under which *gorm.DB is stored in a context.
const DBContextKey = contextKey("db")
