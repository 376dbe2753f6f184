package resume

// Resume is the structured result handed to the renderer. Top-level keys are
// the Output Schema's field names; values are whatever the backend (or the
// fallback reshaper) produced. It is deliberately not validated before
// rendering.
type Resume map[string]interface{}

// FromProfile reshapes a raw profile into the expected top-level resume
// shape. Used as the fallback when model tailoring fails; missing fields
// become empty containers, so this never fails.
func FromProfile(profile map[string]interface{}) (res Resume) {
	res = Resume{
		"name":                 stringField(profile, "name"),
		"contact":              mapField(profile, "contact"),
		"professional_summary": stringField(profile, "professional_summary"),
		"skills":               listField(profile, "skills"),
		"experience":           listField(profile, "experience"),
		"education":            listField(profile, "education"),
		"projects":             listField(profile, "projects"),
	}
	return res
}

func stringField(m map[string]interface{}, key string) (value string) {
	if s, ok := m[key].(string); ok {
		value = s
	}
	return value
}

func mapField(m map[string]interface{}, key string) (value map[string]interface{}) {
	if v, ok := m[key].(map[string]interface{}); ok {
		value = v
		return value
	}
	value = map[string]interface{}{}
	return value
}

func listField(m map[string]interface{}, key string) (value []interface{}) {
	if v, ok := m[key].([]interface{}); ok {
		value = v
		return value
	}
	value = []interface{}{}
	return value
}
