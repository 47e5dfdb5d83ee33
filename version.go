package structor

// Version is the engine version.
const Version = "1.0.0"

// FHIRVersion is the FHIR release the questionnaires conform to.
const FHIRVersion = "4.0.1"
