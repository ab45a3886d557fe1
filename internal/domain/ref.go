package domain

import (
	"bytes"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Ref aceita uma referência que pode chegar como string pura ("abc")
// ou embrulhada em objeto ({"value":"abc"}, {"_id":"abc"}, {"id":"abc"}).
// O formato é resolvido aqui, na borda, e o resto do código só vê o ID.
type Ref struct {
	ID string
}

type refWrapper struct {
	Value    string `json:"value"`
	MongoID  string `json:"_id"`
	PlainID  string `json:"id"`
	ObjectID string `json:"$oid"`
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		r.ID = ""
		return nil
	}

	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		r.ID = strings.TrimSpace(raw)
		return nil
	}

	if data[0] != '{' {
		return fmt.Errorf("referência inválida: %s", string(data))
	}

	var wrapper refWrapper
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}

	for _, candidate := range []string{wrapper.Value, wrapper.MongoID, wrapper.PlainID, wrapper.ObjectID} {
		if id := strings.TrimSpace(candidate); id != "" {
			r.ID = id
			return nil
		}
	}

	return fmt.Errorf("referência sem identificador: %s", string(data))
}

func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

func (r Ref) AccountID() AccountID {
	return NormalizeAccountID(r.ID)
}

func (r Ref) IsEmpty() bool {
	return strings.TrimSpace(r.ID) == ""
}
