package utils

import (
	"net/http"
	"strconv"

	"github.com/cordilleraweaves/marketplace-api/internal/errors"
	"github.com/google/uuid"
)

// ParseID reads a UUID path parameter (users, orders, donations).
func ParseID(r *http.Request, name string) (uuid.UUID, error) {

	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, errors.BadRequestError("Invalid " + name + " format").WithError(err)
	}

	return id, nil
}

// ParseIntID reads a numeric path parameter (products, campaigns, media).
func ParseIntID(r *http.Request, name string) (int64, error) {

	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, errors.BadRequestError("Invalid " + name + " format").WithError(err)
	}

	return id, nil
}

// Pagination reads page/pageSize query parameters with the API defaults.
func Pagination(r *http.Request) (page, pageSize int) {

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err = strconv.Atoi(r.URL.Query().Get("pageSize"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return page, pageSize
}
