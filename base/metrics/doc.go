/*
Package metrics wraps datadog-go to faciliate metric recording
Following are naming convention of metric:
  - Internal process time: *.time
  - External latency: *.latency
  - Error: *.err
  - Warning: *.warn
*/
package metrics
