package wfproxy

var IsAcceptableProtocolVersion = isAcceptableProtocolVersion
