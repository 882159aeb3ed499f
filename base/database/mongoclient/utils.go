package mongoclient

import (
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
)

// MakeBsonM turns a struct of optional fields into a bson.M. Nil pointers and
// zero values are dropped, set pointers are dereferenced.
func MakeBsonM(src interface{}) (bson.M, error) {
	val := reflect.ValueOf(src)
	if val.Kind() == reflect.Ptr && val.Elem().Kind() == reflect.Struct {
		val = val.Elem()
	}

	m := bson.M{}
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if !field.CanInterface() {
			continue
		}
		tag, err := bsoncodec.DefaultStructTagParser(val.Type().Field(i))
		if err != nil {
			return nil, err
		}
		switch {
		case tag.Skip:
		case field.Kind() == reflect.Ptr && !field.IsNil():
			m[tag.Name] = field.Elem().Interface()
		case !field.IsZero():
			m[tag.Name] = field.Interface()
		}
	}
	return m, nil
}
