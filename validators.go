package ons

// rules of the recognized keys, dispatched on the literal key name
var propertyRules = map[string]func(value string) error{
	KeyMessageModel: checkMessageModel,
	KeyONSChannel:   checkONSChannel,
	KeyAccessKey:    checkAccessKey,
	KeySecretKey:    checkSecretKey,
}

// CheckProperty returns the error if the value is not allowed under the key.
// Keys without a rule are accepted unconditionally, the property set is
// open to keys it does not know about.
func CheckProperty(key, value string) error {
	rule, ok := propertyRules[key]
	if !ok {
		return nil
	}
	return rule(value)
}

func checkMessageModel(value string) error {
	if _, ok := parseMessageModel(value); !ok {
		return configError("MessageModel could only be set to BROADCASTING or CLUSTERING, please set it")
	}
	return nil
}

func checkONSChannel(value string) error {
	if _, ok := parseONSChannel(value); !ok {
		return configError("ONSChannel could only be set to CLOUD/ALIYUN/ALL/LOCAL/INNER, please reset it")
	}
	return nil
}

func checkAccessKey(value string) error {
	if value == "" {
		return configError("AccessKey must be set")
	}
	return nil
}

func checkSecretKey(value string) error {
	if value == "" {
		return configError("SecretKey must be set")
	}
	return nil
}
