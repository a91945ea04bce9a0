package services

// ServiceContainer holds instances of all the application services.
// Handlers and the CLI only talk to the converter through these interfaces.
type ServiceContainer struct {
	Converter ConverterSvcFacade
	Rates     RateSvcFacade
}
