// Package graph defines the read-only GraphQL schema over the
// catalogue.
package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/Saurav-S-Mehta-07/RetailEdge/app/models"
	"github.com/Saurav-S-Mehta-07/RetailEdge/app/services"
)

var listingType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Listing",
	Fields: graphql.Fields{
		// Field names follow the model's json tags so the default
		// resolver finds them.
		"id":            &graphql.Field{Type: graphql.Int},
		"name":          &graphql.Field{Type: graphql.String},
		"brand":         &graphql.Field{Type: graphql.String},
		"category":      &graphql.Field{Type: graphql.String},
		"sub_category":  &graphql.Field{Type: graphql.String},
		"cost_price":    &graphql.Field{Type: graphql.Float},
		"selling_price": &graphql.Field{Type: graphql.Float},
		"discount":      &graphql.Field{Type: graphql.Float},
		"stock":         &graphql.Field{Type: graphql.Int},
		"unit":          &graphql.Field{Type: graphql.String},
		"image":         &graphql.Field{Type: graphql.String},
		"description":   &graphql.Field{Type: graphql.String},
	},
})

func init() {
	// gorm.Model embeds ID as a uint; expose it explicitly.
	listingType.AddFieldConfig("id", &graphql.Field{
		Type: graphql.Int,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			if l, ok := p.Source.(models.Listing); ok {
				return int(l.ID), nil
			}
			return nil, nil
		},
	})
}

// NewSchema builds the query schema bound to the listing service. The
// caller's identity is passed through the request's root object.
func NewSchema(listings *services.ListingService) (graphql.Schema, error) {
	rootID := func(p graphql.ResolveParams) uint {
		root, _ := p.Info.RootValue.(map[string]interface{})
		id, _ := root["shopkeeper_id"].(uint)
		return id
	}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "RootQuery",
		Fields: graphql.Fields{
			"listings": &graphql.Field{
				Type:        graphql.NewList(listingType),
				Description: "All listings owned by the authenticated shopkeeper.",
				Args: graphql.FieldConfigArgument{
					"category": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					shopkeeperID := rootID(p)
					if category, ok := p.Args["category"].(string); ok && category != "" && category != "all" {
						cat, err := listings.Catalogue(shopkeeperID, category)
						if err != nil {
							return nil, err
						}
						return cat.Listings, nil
					}
					return listings.OwnedBy(shopkeeperID)
				},
			},
			"listing": &graphql.Field{
				Type:        listingType,
				Description: "A single listing by id.",
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(int)
					return listings.Get(uint(id))
				},
			},
			"categories": &graphql.Field{
				Type:        graphql.NewList(graphql.String),
				Description: "Distinct category names across the caller's listings.",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					cat, err := listings.Catalogue(rootID(p), "all")
					if err != nil {
						return nil, err
					}
					return cat.Categories, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query})
}
