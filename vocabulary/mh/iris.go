package mh

// Namespace is the base IRI prefix for mental health ontology terms and
// entity instances.
const Namespace = "http://example.org/mental_health#"

// AuxNamespace is the auxiliary ontology namespace. Only the measurement
// link property lives here.
const AuxNamespace = "http://example.org/ontology#"

// WikidataNamespace is the base IRI for Wikidata entity cross-references.
const WikidataNamespace = "http://www.wikidata.org/entity/"

// Standard ontology IRI constants.
const (
	// RDFType is the rdf:type predicate.
	RDFType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

	// RDFSLabel is the rdfs:label property.
	RDFSLabel = "http://www.w3.org/2000/01/rdf-schema#label"

	// RDFSComment is the rdfs:comment property.
	RDFSComment = "http://www.w3.org/2000/01/rdf-schema#comment"

	// RDFSDomain is the rdfs:domain property.
	RDFSDomain = "http://www.w3.org/2000/01/rdf-schema#domain"

	// RDFSRange is the rdfs:range property.
	RDFSRange = "http://www.w3.org/2000/01/rdf-schema#range"

	// OWLClass is the owl:Class type.
	OWLClass = "http://www.w3.org/2002/07/owl#Class"

	// OWLObjectProperty is the owl:ObjectProperty type.
	OWLObjectProperty = "http://www.w3.org/2002/07/owl#ObjectProperty"

	// OWLDatatypeProperty is the owl:DatatypeProperty type.
	OWLDatatypeProperty = "http://www.w3.org/2002/07/owl#DatatypeProperty"

	// OWLSameAs links an entity to an equivalent external entity.
	OWLSameAs = "http://www.w3.org/2002/07/owl#sameAs"

	// OWLEquivalentProperty links a property to an equivalent external one.
	OWLEquivalentProperty = "http://www.w3.org/2002/07/owl#equivalentProperty"

	// SKOSPrefLabel is the preferred label for dimension members.
	SKOSPrefLabel = "http://www.w3.org/2004/02/skos/core#prefLabel"

	// SKOSInScheme places a concept in a concept scheme.
	SKOSInScheme = "http://www.w3.org/2004/02/skos/core#inScheme"

	// SKOSConceptScheme is the skos:ConceptScheme type.
	SKOSConceptScheme = "http://www.w3.org/2004/02/skos/core#ConceptScheme"

	// QBMeasure marks a property as an OLAP measure.
	QBMeasure = "http://purl.org/linked-data/cube#measure"

	// QBDataStructureDefinition is the qb:DataStructureDefinition type.
	QBDataStructureDefinition = "http://purl.org/linked-data/cube#DataStructureDefinition"

	// XSDInteger is the xsd:integer datatype.
	XSDInteger = "http://www.w3.org/2001/XMLSchema#integer"

	// XSDFloat is the xsd:float datatype.
	XSDFloat = "http://www.w3.org/2001/XMLSchema#float"

	// XSDDecimal is the xsd:decimal datatype.
	XSDDecimal = "http://www.w3.org/2001/XMLSchema#decimal"

	// XSDString is the xsd:string datatype.
	XSDString = "http://www.w3.org/2001/XMLSchema#string"
)

// Class IRIs for the snowflake schema.
const (
	// ClassPerson represents an individual with demographic attributes.
	ClassPerson = Namespace + "Person"

	// ClassMentalHealth captures mental health condition details.
	ClassMentalHealth = Namespace + "MentalHealth"

	// ClassLifestyle captures lifestyle factors like diet and smoking.
	ClassLifestyle = Namespace + "Lifestyle"

	// ClassMeasurement holds the numeric facts for OLAP queries.
	// Typed qb:DataStructureDefinition rather than owl:Class.
	ClassMeasurement = Namespace + "Measurement"

	// ClassGender through ClassAlcoholConsumption are the normalized
	// dimension classes. One instance per distinct source value.
	ClassGender             = Namespace + "Gender"
	ClassOccupation         = Namespace + "Occupation"
	ClassCountry            = Namespace + "Country"
	ClassSeverity           = Namespace + "Severity"
	ClassConsultation       = Namespace + "Consultation"
	ClassStressLevel        = Namespace + "StressLevel"
	ClassMedication         = Namespace + "Medication"
	ClassDietQuality        = Namespace + "DietQuality"
	ClassSmokingHabit       = Namespace + "SmokingHabit"
	ClassAlcoholConsumption = Namespace + "AlcoholConsumption"

	// CountryHierarchy and SeverityHierarchy are SKOS concept schemes for
	// the dimensions that carry a roll-up hierarchy.
	CountryHierarchy  = Namespace + "CountryHierarchy"
	SeverityHierarchy = Namespace + "SeverityHierarchy"
)

// Object property IRIs linking entities.
const (
	// PropHasGender links Person to Gender.
	PropHasGender = Namespace + "hasGender"

	// PropHasOccupation links Person to Occupation.
	PropHasOccupation = Namespace + "hasOccupation"

	// PropHasCountry links Person to Country.
	// Declared owl:equivalentProperty to wd:P17.
	PropHasCountry = Namespace + "hasCountry"

	// PropHasMentalHealth links Person to its MentalHealth instance.
	PropHasMentalHealth = Namespace + "hasMentalHealth"

	// PropHasSeverity links MentalHealth to Severity.
	PropHasSeverity = Namespace + "hasSeverity"

	// PropHasConsultationHistory links MentalHealth to Consultation.
	PropHasConsultationHistory = Namespace + "hasConsultationHistory"

	// PropHasStressLevel links MentalHealth to StressLevel.
	PropHasStressLevel = Namespace + "hasStressLevel"

	// PropHasMedicationUsage links MentalHealth to Medication.
	PropHasMedicationUsage = Namespace + "hasMedicationUsage"

	// PropHasLifestyle links Person to its Lifestyle instance.
	PropHasLifestyle = Namespace + "hasLifestyle"

	// PropHasDietQuality links Lifestyle to DietQuality.
	PropHasDietQuality = Namespace + "hasDietQuality"

	// PropHasSmokingHabit links Lifestyle to SmokingHabit.
	PropHasSmokingHabit = Namespace + "hasSmokingHabit"

	// PropHasAlcoholConsumption links Lifestyle to AlcoholConsumption.
	PropHasAlcoholConsumption = Namespace + "hasAlcoholConsumption"

	// PropHasMeasurement links Person to Measurement. Lives in the
	// auxiliary namespace, as in the source dataset's ontology.
	PropHasMeasurement = AuxNamespace + "hasMeasurement"

	// WikidataCountryProperty is wd:P17, the Wikidata "country" property.
	WikidataCountryProperty = WikidataNamespace + "P17"
)

// Data property IRIs for literal-valued attributes.
const (
	// PropHasAge is the person's age in years (xsd:integer).
	PropHasAge = Namespace + "hasAge"

	// PropHasSleepHours is average sleep per day (xsd:float, qb:measure).
	PropHasSleepHours = Namespace + "hasSleepHours"

	// PropHasWorkHours is work hours per week (xsd:integer, qb:measure).
	PropHasWorkHours = Namespace + "hasWorkHours"

	// PropHasPhysicalActivityHours is physical activity hours per week
	// (xsd:integer, qb:measure).
	PropHasPhysicalActivityHours = Namespace + "hasPhysicalActivityHours"

	// PropHasSocialMediaUsage is social media hours per day
	// (xsd:float, qb:measure).
	PropHasSocialMediaUsage = Namespace + "hasSocialMediaUsage"
)

// Entity IRI path segments. Instance IRIs are Namespace + segment + "/" + id.
const (
	SegmentUser         = "user"
	SegmentGender       = "gender"
	SegmentOccupation   = "occupation"
	SegmentCountry      = "country"
	SegmentSeverity     = "severity"
	SegmentConsultation = "consultation"
	SegmentStress       = "stress"
	SegmentMedication   = "medication"
	SegmentDiet         = "diet"
	SegmentSmoking      = "smoking"
	SegmentAlcohol      = "alcohol"
	SegmentMentalHealth = "mental_health"
	SegmentLifestyle    = "lifestyle"
	SegmentMeasurement  = "measurement"
)

// DimensionSegments lists the entity path segments of the ten normalized
// dimensions. Dimension entities are shared reference data: the subsampler
// retains them unconditionally.
var DimensionSegments = []string{
	SegmentGender,
	SegmentOccupation,
	SegmentCountry,
	SegmentSeverity,
	SegmentConsultation,
	SegmentStress,
	SegmentMedication,
	SegmentDiet,
	SegmentSmoking,
	SegmentAlcohol,
}

// EntityIRI builds an instance IRI from a path segment and identifier,
// e.g. EntityIRI(SegmentUser, "42") -> "http://example.org/mental_health#user/42".
func EntityIRI(segment, id string) string {
	return Namespace + segment + "/" + id
}
