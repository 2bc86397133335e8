// Package apperr définit la taxonomie d'erreurs du cœur métier.
// Les handlers traduisent ces erreurs en statuts HTTP ; le cœur ne
// manipule jamais de codes HTTP lui-même.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound : utilisateur, post ou commentaire référencé absent.
	ErrNotFound = errors.New("ressource introuvable")
	// ErrConflict : username ou email déjà pris à la création ou à la mise à jour.
	ErrConflict = errors.New("conflit d'unicité")
	// ErrValidation : contenu vide, bio trop longue, auto-follow, etc.
	ErrValidation = errors.New("requête invalide")
	// ErrUnauthorized : l'acteur n'est pas propriétaire de la ressource.
	ErrUnauthorized = errors.New("action non autorisée")
	// ErrStorage : échec de transaction ou de commit, non récupérable ici.
	ErrStorage = errors.New("erreur de stockage")
)

// Wrap attache un détail lisible à une erreur de la taxonomie.
func Wrap(kind error, detail string) error {
	return fmt.Errorf("%w: %s", kind, detail)
}

// Wrapf est la variante formatée de Wrap.
func Wrapf(kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{kind}, args...)...)
}

// HTTPStatus mappe une erreur du cœur vers un statut HTTP.
// Toute erreur hors taxonomie est traitée comme un échec de stockage.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
