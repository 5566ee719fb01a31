package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"strings" // strings splits the comma-separated origin list
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Required values have no fallback: the process
// refuses to start rather than run with a default secret or a guessed
// database address.
type Config struct {
	Env         string   // application environment (e.g. "dev", "prod")
	Port        string   // HTTP port to listen on
	MongoURL    string   // document store connection string
	DBName      string   // document store database name
	JWTSecret   string   // secret used to sign bearer tokens
	CORSOrigins []string // allowed cross-origin hosts
	BcryptCost  int      // bcrypt cost for password hashing

	CloudinaryCloudName string // media host account name
	CloudinaryAPIKey    string // media host API key
	CloudinaryAPISecret string // media host API secret
}

// Store is the subset of configuration needed to reach the document store:
// the provisioning CLI manages admin accounts without the HTTP and media
// host variables being set.
type Store struct {
	MongoURL   string // document store connection string
	DBName     string // document store database name
	BcryptCost int    // bcrypt cost for password hashing
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	st := LoadStore()
	return Config{
		Env:         getenv("APP_ENV", "dev"),
		Port:        getenv("APP_PORT", "8080"),
		MongoURL:    st.MongoURL,
		DBName:      st.DBName,
		JWTSecret:   must("JWT_SECRET"),
		CORSOrigins: strings.Split(getenv("CORS_ORIGINS", "*"), ","),
		BcryptCost:  st.BcryptCost,

		CloudinaryCloudName: must("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    must("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: must("CLOUDINARY_API_SECRET"),
	}
}

// LoadStore reads only the store-related variables.
func LoadStore() Store {
	return Store{
		MongoURL:   must("MONGO_URL"),
		DBName:     must("DB_NAME"),
		BcryptCost: intOr("BCRYPT_COST", 10),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// getenv returns the value of an optional environment variable, or the
// provided default when unset or empty.
func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// intOr is like getenv() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func intOr(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}
