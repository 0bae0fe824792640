// Package mocks holds testify mocks of the domain repositories and services.
package mocks
