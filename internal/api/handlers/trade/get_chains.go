package trade

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github/uniagent/go-broker/internal/api"
	"github/uniagent/go-broker/internal/types"
	"github/uniagent/go-broker/internal/util"
)

func GetChainsRoute(s *api.Server) *echo.Route {
	return s.Router.Root.GET("/chains", getChainsHandler(s))
}

// getChainsHandler lists all accepted chain aliases with their canonical
// chain ids. Unauthenticated, the mapping is public information.
func getChainsHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		aliases, primaryAssets := s.Broker.SupportedChains()

		chains := make(map[string]int64, len(aliases))
		for alias, id := range aliases {
			chains[alias] = int64(id)
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.GetChainsResponse{
			Chains:        chains,
			PrimaryAssets: primaryAssets,
		})
	}
}
