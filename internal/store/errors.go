package store

import "errors"

var (
	// ErrNotFound couvre aussi les identifiants malformés :
	// un id non conforme est traité comme un document absent
	ErrNotFound = errors.New("document introuvable")

	// ErrValidation signale un document rejeté avant écriture
	ErrValidation = errors.New("document invalide")
)
