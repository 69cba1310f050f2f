// Package schema traduce entre los modelos de dominio (camelCase) y los
// registros del store (snake_case). Los nil viajan como NULL / null, nunca
// como claves omitidas.
package schema

import "fmt"

var litterColumns = map[string]string{
	"id":                        "id",
	"ownerUserId":               "owner_user_id",
	"name":                      "name",
	"phase":                     "status",
	"motherId":                  "mother_id",
	"fatherId":                  "father_id",
	"externalFatherName":        "external_father_name",
	"externalFatherPedigreeUrl": "external_father_pedigree_url",
	"matingDate":                "mating_date",
	"matingDateFrom":            "mating_date_from",
	"matingDateTo":              "mating_date_to",
	"expectedDate":              "expected_date",
	"birthDate":                 "birth_date",
	"completionDate":            "completion_date",
	"kittenCount":               "kitten_count",
	"reasoning":                 "reasoning",
	"inbreedingCoefficient":     "inbreeding_coefficient",
	"bloodTypeNotes":            "blood_type_notes",
	"alternativeCombinations":   "alternative_combinations",
	"birthNotes":                "birth_notes",
	"evaluation":                "evaluation",
	"buyersInfo":                "buyers_info",
	"nrrRegistered":             "nrr_registered",
	"notes":                     "notes",
	"pregnancyNotes":            "pregnancy_notes",
	"motherWeightLog":           "mother_weight_log",
	"createdAt":                 "created_at",
	"updatedAt":                 "updated_at",
}

var kittenColumns = map[string]string{
	"id":          "id",
	"litterId":    "litter_id",
	"name":        "name",
	"gender":      "gender",
	"color":       "color",
	"emsCode":     "ems_code",
	"status":      "status",
	"reservedBy":  "reserved_by",
	"notes":       "notes",
	"birthWeight": "birth_weight",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
}

// LitterColumn devuelve la columna de un campo canónico del Litter.
func LitterColumn(field string) (string, error) {
	c, ok := litterColumns[field]
	if !ok {
		return "", fmt.Errorf("schema: unknown litter field %q", field)
	}
	return c, nil
}

// KittenColumn devuelve la columna de un campo canónico del Kitten.
func KittenColumn(field string) (string, error) {
	c, ok := kittenColumns[field]
	if !ok {
		return "", fmt.Errorf("schema: unknown kitten field %q", field)
	}
	return c, nil
}

// Assignment es un "columna = valor" de un update parcial. Value nil => NULL.
type Assignment struct {
	Column string
	Value  any
}

func mustColumn(lookup func(string) (string, error), field string) string {
	c, err := lookup(field)
	if err != nil {
		panic(err)
	}
	return c
}
