// Package auth provides the session middleware guarding the admin panel.
//
// Route guards are the only access control layer: the content API endpoints
// themselves perform no authorization checks.
package auth
