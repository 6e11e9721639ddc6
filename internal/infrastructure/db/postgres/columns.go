package postgres

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"codeforge/internal/domain/entities"
)

// JSON-serialized columns keep slice-valued fields portable between the
// Postgres and sqlite drivers.

func jsonValue(v interface{}) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func jsonScan(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch data := value.(type) {
	case []byte:
		return json.Unmarshal(data, dest)
	case string:
		return json.Unmarshal([]byte(data), dest)
	default:
		return fmt.Errorf("unsupported column type %T", value)
	}
}

type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return jsonValue([]string{})
	}
	return jsonValue([]string(s))
}

func (s *StringSlice) Scan(value interface{}) error {
	return jsonScan(value, (*[]string)(s))
}

type UUIDSlice []uuid.UUID

func (s UUIDSlice) Value() (driver.Value, error) {
	if s == nil {
		return jsonValue([]uuid.UUID{})
	}
	return jsonValue([]uuid.UUID(s))
}

func (s *UUIDSlice) Scan(value interface{}) error {
	return jsonScan(value, (*[]uuid.UUID)(s))
}

type ExampleList []entities.Example

func (l ExampleList) Value() (driver.Value, error) {
	if l == nil {
		return jsonValue([]entities.Example{})
	}
	return jsonValue([]entities.Example(l))
}

func (l *ExampleList) Scan(value interface{}) error {
	return jsonScan(value, (*[]entities.Example)(l))
}

type TestCaseList []entities.TestCase

func (l TestCaseList) Value() (driver.Value, error) {
	if l == nil {
		return jsonValue([]entities.TestCase{})
	}
	return jsonValue([]entities.TestCase(l))
}

func (l *TestCaseList) Scan(value interface{}) error {
	return jsonScan(value, (*[]entities.TestCase)(l))
}

type StarterCodeColumn entities.StarterCode

func (c StarterCodeColumn) Value() (driver.Value, error) {
	return jsonValue(entities.StarterCode(c))
}

func (c *StarterCodeColumn) Scan(value interface{}) error {
	return jsonScan(value, (*entities.StarterCode)(c))
}
