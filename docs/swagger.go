// Package docs provides Swagger documentation for the API.
package docs

// @title LinkedIn Automation Dashboard API
// @version 1.0
// @description Backend for the LinkedIn automation SaaS dashboard
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api
// @schemes http https
