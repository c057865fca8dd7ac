package entity

// Role represents the kind of account a user holds.
// Stored as a plain string on the user document.
type Role string

const (
	RoleYouth   Role = "youth"
	RoleCompany Role = "company"
	RoleAdmin   Role = "admin"
)
