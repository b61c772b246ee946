package geoextent

import "github.com/cockroachdb/errors"

var errEmptyExtent = errors.New("geoextent: no non-empty envelope was accumulated")
