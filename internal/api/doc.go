// Package api exposes the spare-parts inventory over HTTP.
//
// The API is a plain JSON CRUD surface:
//
//	GET    /health
//	GET    /api/spare-parts          list, with model/min_price/max_price filters
//	POST   /api/spare-parts          create (car model must already exist)
//	GET    /api/spare-parts/{id}     retrieve
//	PUT    /api/spare-parts/{id}     update
//	DELETE /api/spare-parts/{id}     delete
//	GET    /api/car-models           list
//	POST   /api/car-models           create
//
// Design decision: We serve straight from net/http's ServeMux rather
// than a router framework. The route table is eight entries with one
// dynamic segment; a router dependency would carry more surface than
// the whole handler layer.
package api
