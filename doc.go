// Package main provides the entry point of the mycontacts service.
// It serves the settings pages of the "My Contacts" module with fiber: contact
// types and contact groups are created, renamed and soft deleted there, and a
// contact type rename is written through to the type entries embedded in every
// contact. Data is stored with gorm on MySQL, PostgreSQL or SQLite.
package main
