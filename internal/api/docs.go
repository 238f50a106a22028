package api

import (
	"net/http"
	"sync"

	"github.com/swaggo/swag"
)

type openAPIDoc struct {
	once sync.Once
	json string
}

func (d *openAPIDoc) ReadDoc() string {
	d.once.Do(func() {
		d.json = "{}"
		doc, err := GetSwagger()
		if err != nil {
			return
		}
		if b, err := doc.MarshalJSON(); err == nil {
			d.json = string(b)
		}
	})
	return d.json
}

func init() {
	swag.Register(swag.Name, &openAPIDoc{})
}

// RegisterDocsRoutes serves the API document as JSON.
func RegisterDocsRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /docs/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(doc))
	})
}
