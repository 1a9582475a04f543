package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/germanygsg/medrec/internal/middleware"
)

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// actorID is the authenticated user, when the route sits behind the
// auth middleware.
func actorID(c *gin.Context) *string {
	v, ok := c.Get(middleware.ContextUserID)
	if !ok {
		return nil
	}
	id, ok := v.(string)
	if !ok {
		return nil
	}
	return &id
}

// parseInstant accepts RFC 3339 or a plain date. A plain date used as a
// range end covers the whole day, so callers widen it themselves.
func parseInstant(s string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, false, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}

// parseRange reads optional inclusive range bounds from the named query
// parameters. Absent bounds stay nil: the listing is unfiltered.
func parseRange(c *gin.Context, startKey, endKey string) (start, end *time.Time, err error) {
	if s := c.Query(startKey); s != "" {
		t, _, perr := parseInstant(s)
		if perr != nil {
			return nil, nil, perr
		}
		start = &t
	}

	if s := c.Query(endKey); s != "" {
		t, dateOnly, perr := parseInstant(s)
		if perr != nil {
			return nil, nil, perr
		}
		if dateOnly {
			t = t.Add(24*time.Hour - time.Second)
		}
		end = &t
	}

	return start, end, nil
}
