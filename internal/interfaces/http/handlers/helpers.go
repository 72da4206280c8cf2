package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerrors "github.com/naqeebullahkahai-creator/skiller2-sub003/internal/domain/errors"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/pkg/utils"
)

func bindPagination(c *gin.Context) utils.PaginationParams {
	var params utils.PaginationParams
	_ = c.ShouldBindQuery(&params)
	if params.Limit == 0 {
		params.Limit = 20
	}
	return utils.GetPaginationParams(params.Page, params.Limit)
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.BadRequest("Invalid " + name)
	}
	return id, nil
}
