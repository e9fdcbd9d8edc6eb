package weather

// Renderer is the presentation collaborator the pipeline draws through.
// Calls for one widget are serialized by the pipeline; implementations must not
// call back into the pipeline.
type Renderer interface {
	ShowLoading(visible bool)
	ShowCurrent(current CurrentConditions)
	ShowForecast(points []ForecastPoint)
	ShowNotFound()
	HideNotFound()
}
