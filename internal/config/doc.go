// Package config loads the glossary configuration with viper.
//
// Values come from defaults, an optional YAML file and GLOSSARY_* environment
// variables, in increasing priority. Nested keys map to variables by
// replacing dots with underscores:
//
//	database.url       -> GLOSSARY_DATABASE_URL
//	jobs.publish_schedule -> GLOSSARY_JOBS_PUBLISH_SCHEDULE
package config
