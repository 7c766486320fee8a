package controllers

import (
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/Saurav-S-Mehta-07/RetailEdge/app/middlewares"
	"github.com/Saurav-S-Mehta-07/RetailEdge/app/services"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/auth"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/bind"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/response"
)

// APIController serves the token-guarded JSON surface.
type APIController struct {
	authenticator services.Authenticator
	listings      *services.ListingService
	schema        graphql.Schema
}

func NewAPIController(authenticator services.Authenticator, listings *services.ListingService, schema graphql.Schema) *APIController {
	return &APIController{authenticator: authenticator, listings: listings, schema: schema}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login serves POST /api/login: exchange credentials for a JWT.
func (c *APIController) Login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	sk, err := c.authenticator.Verify(r.Context(), in.Email, in.Password)
	if err != nil {
		response.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := auth.GenerateToken(sk.ID)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not issue token")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"token": token})
}

// Listings serves GET /api/listings: the caller's catalogue as JSON.
func (c *APIController) Listings(w http.ResponseWriter, r *http.Request) {
	shopkeeperID, ok := middlewares.APIIdentity(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "missing identity")
		return
	}

	items, err := c.listings.OwnedBy(shopkeeperID)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load listings")
		return
	}

	response.JSON(w, http.StatusOK, items)
}

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

// GraphQL serves POST /api/graphql: read-only catalogue queries.
func (c *APIController) GraphQL(w http.ResponseWriter, r *http.Request) {
	var in graphqlRequest
	if _, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	shopkeeperID, _ := middlewares.APIIdentity(r)

	result := graphql.Do(graphql.Params{
		Schema:         c.schema,
		RequestString:  in.Query,
		VariableValues: in.Variables,
		Context:        r.Context(),
		RootObject:     map[string]interface{}{"shopkeeper_id": shopkeeperID},
	})

	status := http.StatusOK
	if len(result.Errors) > 0 {
		status = http.StatusBadRequest
	}
	response.JSON(w, status, result)
}
