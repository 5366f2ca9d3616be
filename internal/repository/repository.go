package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
// Every lookup is scoped by owner in addition to the record id: a record that
// exists but belongs to another owner behaves exactly like a missing record.
