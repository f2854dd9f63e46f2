package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrUnknownDBEngine error if config db.engine is not sqlite or mysql.
	ErrUnknownDBEngine = errors.New("toml config db.engine must be sqlite or mysql")

	// ErrUnknownUploadBackend error if config upload.backend is not local or cloudinary.
	ErrUnknownUploadBackend = errors.New("toml config upload.backend must be local or cloudinary")

	// ErrCloudinaryCloudNameEmpty error if the cloudinary backend is selected without a cloud name.
	ErrCloudinaryCloudNameEmpty = errors.New("toml config upload.cloudinary.cloudname can not be empty")
)
