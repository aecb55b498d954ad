package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sporthub/webapp/internal/api/middleware"
	"github.com/sporthub/webapp/internal/core/ports"
)

// FeedHandler exposes the home view: activity browsing and search.
type FeedHandler struct {
	feed ports.FeedService
}

func NewFeedHandler(feed ports.FeedService) *FeedHandler {
	return &FeedHandler{feed: feed}
}

// Activities lists activities with pagination.
//
// @Summary      Browse activities
// @Tags         home
// @Produce      json
// @Param        skip   query     int  false  "Offset"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  ports.ActivityPage
// @Router       /home/activities [get]
func (h *FeedHandler) Activities(c echo.Context) error {
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	token, _ := c.Get(middleware.CtxToken).(string)

	page, err := h.feed.Activities(c.Request().Context(), skip, limit, token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Search runs a search and resolves the referenced activities.
//
// @Summary      Search sessions
// @Tags         home
// @Produce      json
// @Param        query  query     string  false  "Free text"
// @Param        sport  query     string  false  "Sport filter"
// @Param        site   query     string  false  "Site filter"
// @Param        date   query     string  false  "Date filter (yyyy-mm-dd)"
// @Param        sort   query     string  false  "Sort order"
// @Param        page   query     int     false  "Page"
// @Param        size   query     int     false  "Page size"
// @Success      200    {object}  ports.SearchFeed
// @Router       /home/search [get]
func (h *FeedHandler) Search(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	params := ports.SearchParams{
		Query: c.QueryParam("query"),
		Sport: c.QueryParam("sport"),
		Site:  c.QueryParam("site"),
		Date:  c.QueryParam("date"),
		Sort:  c.QueryParam("sort"),
		Page:  page,
		Size:  size,
	}
	token, _ := c.Get(middleware.CtxToken).(string)

	feed, err := h.feed.Search(c.Request().Context(), params, token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, feed)
}
