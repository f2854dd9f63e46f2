// Package main provides the entry point for the Webfolio content management
// application. It runs a web server using the Fiber framework that serves a
// public portfolio site, a JSON content API and an authenticated admin panel
// for managing sections, projects, links, messages and site settings. The
// application uses gorm for data persistence and supports local-disk or
// Cloudinary image uploads.
package main
