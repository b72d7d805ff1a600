package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"MedivaDesk/services"
)

// listStateFromQuery applies the list query parameters on top of a view's
// defaults. The page parameter is applied last so it survives the page
// reset the other setters perform.
func listStateFromQuery(c *gin.Context, st services.ListState) services.ListState {
	if v, ok := c.GetQuery("search"); ok {
		st.SetSearch(v)
	}
	if v, ok := c.GetQuery("gender"); ok {
		st.SetGender(v)
	}
	if v, ok := c.GetQuery("sort"); ok {
		st.SetSort(v)
	}
	if v, ok := c.GetQuery("per_page"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			st.SetPerPage(n)
		}
	}
	if v, ok := c.GetQuery("page"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			st.SetPage(n)
		}
	}
	return st
}
