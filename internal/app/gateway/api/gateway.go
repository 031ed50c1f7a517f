package gateway

import (
	"fmt"

	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/config"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/gateway/api/model"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/gateway/rest"
)

func InitGateway(config config.Config) (model.Gateway, error) {
	if len(config.BackendURL) == 0 {
		return nil, fmt.Errorf("empty admin backend url")
	}

	return rest.New(config)
}
