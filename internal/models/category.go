package models

// Category - категория инцидента из фиксированного перечня
type Category string

const (
	CategoryCommunalAccident      Category = "Communal Accident"
	CategoryTrafficAccident       Category = "Traffic Accident"
	CategoryFire                  Category = "Fire"
	CategoryVandalism             Category = "Vandalism"
	CategoryPowerOutage           Category = "Power Outage"
	CategoryGasLeak               Category = "Gas Leak"
	CategoryFlooding              Category = "Flooding"
	CategoryRoadWork              Category = "Road Work"
	CategoryProtest               Category = "Protest"
	CategoryTheft                 Category = "Theft"
	CategoryBuildingCollapse      Category = "Building Collapse"
	CategoryPublicDisturbance     Category = "Public Disturbance"
	CategoryAnimalAttack          Category = "Animal Attack"
	CategoryHazardousMaterial     Category = "Hazardous Material"
	CategoryWeatherAlert          Category = "Weather Alert"
	CategoryMissingPerson         Category = "Missing Person"
	CategoryInfrastructureFailure Category = "Infrastructure Failure"
	CategoryExplosion             Category = "Explosion"
	CategoryTransportDisruption   Category = "Transport Disruption"
	CategoryMedicalEmergency      Category = "Medical Emergency"
)

// Categories - перечень в порядке отображения в фильтрах
var Categories = []Category{
	CategoryCommunalAccident,
	CategoryTrafficAccident,
	CategoryFire,
	CategoryVandalism,
	CategoryPowerOutage,
	CategoryGasLeak,
	CategoryFlooding,
	CategoryRoadWork,
	CategoryProtest,
	CategoryTheft,
	CategoryBuildingCollapse,
	CategoryPublicDisturbance,
	CategoryAnimalAttack,
	CategoryHazardousMaterial,
	CategoryWeatherAlert,
	CategoryMissingPerson,
	CategoryInfrastructureFailure,
	CategoryExplosion,
	CategoryTransportDisruption,
	CategoryMedicalEmergency,
}

// Known сообщает, входит ли категория в перечень
func (c Category) Known() bool {
	for _, known := range Categories {
		if known == c {
			return true
		}
	}
	return false
}
