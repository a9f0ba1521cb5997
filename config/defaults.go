package config

import (
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"
)

func isAllowedOverrideType(v interface{}) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Map:
		return false
	case reflect.Array, reflect.Slice:
		// only override with array if it has a length
		return reflect.ValueOf(v).Len() > 0
	case reflect.Int, reflect.Bool, reflect.String:
		// enable overriding with "", 0, false
		// warning: config objects should always use "omitempty" or _all_ fields will get overwritten
		return true
	}
	//nolint
	if reflect.ValueOf(v).IsZero() {
		// don't overwrite with 0 values or many things will get overwritten
		return false
	}
	return true
}

func isMap(v interface{}) bool {
	return reflect.TypeOf(v).Kind() == reflect.Map
}

func recursiveOverride(defaults map[string]interface{}, overrides map[string]interface{}) {
	for key, val := range overrides {
		existingVal, ok := defaults[key]
		if !ok {
			defaults[key] = val
			continue
		}
		if isMap(existingVal) && isMap(val) {
			switch existing := existingVal.(type) {
			case map[string]interface{}:
				recursiveOverride(existing, val.(map[string]interface{}))
			default:
				panic(fmt.Sprintf("unknown map: %T", existingVal))
			}
		} else if isAllowedOverrideType(val) {
			defaults[key] = val
		}
		// full arrays and maps are never overwritten by empty values
	}
}

// ApplyDefaults merges overrideCfg on top of defaultCfg and deserializes the
// result into newCfg.
func ApplyDefaults(defaultCfg interface{}, overrideCfg interface{}, newCfg interface{}) error {
	bz, err := yaml.Marshal(defaultCfg)
	if err != nil {
		return err
	}
	defaults := map[string]interface{}{}
	if err := yaml.Unmarshal(bz, &defaults); err != nil {
		return err
	}

	bz, err = yaml.Marshal(overrideCfg)
	if err != nil {
		return err
	}
	overrides := map[string]interface{}{}
	if err := yaml.Unmarshal(bz, &overrides); err != nil {
		return err
	}
	recursiveOverride(defaults, overrides)

	bz, err = yaml.Marshal(defaults)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(bz, newCfg)
}
