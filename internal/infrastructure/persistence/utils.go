package persistence

// nullIfEmpty convierte "" en NULL para columnas UNIQUE o con foreign key,
// donde la cadena vacía violaría la restricción.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
