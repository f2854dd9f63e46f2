package config

import (
	"time"

	"github.com/webfolio-cms/webfolio/internal/logger"
)

const (
	// EngineSQLite selects the embedded SQLite database engine.
	EngineSQLite = "sqlite"
	// EngineMySQL selects the MySQL database engine.
	EngineMySQL = "mysql"

	// UploadBackendLocal stores uploaded files on the local filesystem.
	UploadBackendLocal = "local"
	// UploadBackendCloudinary uploads files to the Cloudinary image host.
	UploadBackendCloudinary = "cloudinary"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Upload    Upload
}

// Webserver implement webserver settings.
type Webserver struct {
	CleanPath      bool    // use clean path middleware to allow multi slash requests
	DisableRecover bool    // disable recover middleware
	Domain         string  // domain name for the webserver
	Port           int     // listening port for the webserver
	ShutDownTime   int     // wait time for shutdown
	URL            string  // base url for the webserver
	Session        Session // session settings
}

// Upload holds the upload adapter settings.
type Upload struct {
	Backend  string // "local" or "cloudinary"
	LocalDir string // public static directory for the local backend

	Cloudinary Cloudinary
}

// Cloudinary holds the Cloudinary upload API credentials.
type Cloudinary struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}
