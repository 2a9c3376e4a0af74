package main

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iver-wharf/wharf-core/pkg/app"
)

// AppVersion is the type holding metadata about this application's version.
var AppVersion app.Version

//go:embed version.yaml
var versionFile []byte

func loadEmbeddedVersionFile() error {
	return app.UnmarshalVersionYAML(versionFile, &AppVersion)
}

// getVersionHandler godoc
// @id getVersion
// @summary Returns the version of this API
// @tags meta
// @success 200 {object} app.Version
// @router /version [get]
func getVersionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, AppVersion)
}
