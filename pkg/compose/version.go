package compose

// Version of the compose module.
const Version = "1.0.0"
