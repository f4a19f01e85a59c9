package badger

import "fmt"

// Key prefixes for different data types
const (
	employeeRecordPrefix = "emprec"
	employeeEmailPrefix  = "empeml"
)

// makeEmployeeKey generates a key for an employee record by ID.
func makeEmployeeKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", employeeRecordPrefix, id))
}

// makeEmailKey generates a key for the email lookup index.
// Format: prefix:email
func makeEmailKey(email string) []byte {
	return []byte(fmt.Sprintf("%s:%s", employeeEmailPrefix, email))
}
