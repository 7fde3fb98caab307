package controller

import (
	"github.com/landagri/backend/internal/pkg/store"
)

type Controller struct {
	store store.Store
}

func NewController(st store.Store) *Controller {
	return &Controller{store: st}
}
