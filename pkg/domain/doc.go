// Package domain contains the core entities of the library: users, books,
// loans and the fines raised against overdue loans. The types carry no
// persistence or transport concerns so every layer can share them.
package domain
