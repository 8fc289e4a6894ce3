package handler

import (
	"context"
	"net/http"

	"mis/internal/middleware"
	"mis/internal/repository"
	"mis/pkg/apperror"
	"mis/pkg/response"

	"github.com/gin-gonic/gin"
)

// lister and friends are satisfied by service.Resource[T] and the services embedding it
type lister[T any] interface {
	List(ctx context.Context, params repository.Params) ([]T, error)
}

type creator interface {
	Create(ctx context.Context, actor string, fields repository.Fields) error
}

type updater interface {
	Update(ctx context.Context, actor, id string, fields repository.Fields) error
}

type deleter interface {
	Delete(ctx context.Context, actor, id string) error
}

// queryParams flattens the query string, keeping the first value of each key
func queryParams(c *gin.Context) repository.Params {
	params := repository.Params{}
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	return params
}

func bindFields(c *gin.Context) (repository.Fields, error) {
	var fields repository.Fields
	if err := c.ShouldBindJSON(&fields); err != nil {
		return nil, apperror.BadRequest("Invalid request payload: " + err.Error())
	}
	if fields == nil {
		fields = repository.Fields{}
	}
	return fields, nil
}

func listAs[T any](c *gin.Context, svc lister[T], key string) {
	rows, err := svc.List(c.Request.Context(), queryParams(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.With(key, rows))
}

func createFrom(c *gin.Context, svc creator, msg string) {
	fields, err := bindFields(c)
	if err != nil {
		response.Fail(c, err)
		return
	}
	if err := svc.Create(c.Request.Context(), middleware.Actor(c), fields); err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Message(msg))
}

func updateFrom(c *gin.Context, svc updater, id, msg string) {
	fields, err := bindFields(c)
	if err != nil {
		response.Fail(c, err)
		return
	}
	if err := svc.Update(c.Request.Context(), middleware.Actor(c), id, fields); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, msg)
}

func deleteBy(c *gin.Context, svc deleter, id, msg string) {
	if err := svc.Delete(c.Request.Context(), middleware.Actor(c), id); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, msg)
}
